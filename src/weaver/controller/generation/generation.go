// Package generation orchestrates chat-driven document generation: one
// instruction in flight per session, fixed chat acknowledgements, and
// persistence only on success.
package generation

import (
	"context"
	"strings"
	"sync"

	"github.com/gofrs/uuid"
	editsession "github.com/siteweaver/weaver/src/weaver/controller/edit-session"
	"github.com/siteweaver/weaver/src/weaver/entity"
	"github.com/siteweaver/weaver/src/weaver/gateway/generator"
	notifier "github.com/siteweaver/weaver/src/weaver/gateway/studio-client"
	"github.com/siteweaver/weaver/src/weaver/internal/clock"
	weavererrors "github.com/siteweaver/weaver/src/weaver/internal/errors"
	"github.com/siteweaver/weaver/src/weaver/repository/session"
	"github.com/uber-go/tally"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey   = "generation"
	_scopeName = "generation"

	_counterSuccess = "success"
	_counterFailure = "failure"
	_counterRefused = "refused"
)

// Fixed assistant replies shown in the chat panel.
const (
	MessageInitialDesign     = "Here is your initial design!"
	MessageUpdateSuccess     = "Design updated successfully."
	MessageGenerationFailure = "Sorry, I encountered an error generating the design. Please try again."
)

// Controller runs generations for editing sessions.
type Controller interface {
	// Submit runs one instruction. Refused while another is outstanding for
	// the same session; there is no queue and no cancellation.
	Submit(ctx context.Context, instruction string) error
	// EnsureInitialGeneration fires the originating prompt once for a
	// project that still shows the placeholder document.
	EnsureInitialGeneration(ctx context.Context) error
	// InFlight reports whether the session has a generation outstanding.
	InFlight(ctx context.Context) (bool, error)
}

// Params are inbound parameters to construct the controller.
type Params struct {
	fx.In

	Sessions    session.Repository
	EditSession editsession.Controller
	Generator   generator.Gateway
	Studio      notifier.Gateway
	Clock       clock.Clock
	Logger      *zap.SugaredLogger
	Stats       tally.Scope
}

type controller struct {
	sessions    session.Repository
	editSession editsession.Controller
	generator   generator.Gateway
	studio      notifier.Gateway
	clock       clock.Clock
	logger      *zap.SugaredLogger
	stats       tally.Scope

	inFlight map[uuid.UUID]bool
	mu       sync.Mutex
}

// New creates a new generation controller.
func New(p Params) Controller {
	return &controller{
		sessions:    p.Sessions,
		editSession: p.EditSession,
		generator:   p.Generator,
		studio:      p.Studio,
		clock:       p.Clock,
		logger:      p.Logger.With("controller", _nameKey),
		stats:       p.Stats.SubScope(_scopeName),
		inFlight:    make(map[uuid.UUID]bool),
	}
}

func (c *controller) Submit(ctx context.Context, instruction string) error {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return weavererrors.ErrEmptyInstruction
	}

	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}
	project, err := c.editSession.Project(ctx)
	if err != nil {
		return err
	}

	if err := c.acquire(ctx, s.UUID); err != nil {
		return err
	}
	defer c.release(ctx, s.UUID)

	// The generator sees the conversation as it was before this instruction.
	prior := project.History

	if err := c.editSession.AppendTurn(ctx, entity.ChatTurn{
		Speaker:   entity.SpeakerUser,
		Text:      instruction,
		Timestamp: c.clock.Now(),
	}); err != nil {
		return err
	}

	currentDocument := ""
	if project.HasRealDocument() {
		currentDocument = project.Document
	}

	c.run(ctx, instruction, currentDocument, prior, MessageUpdateSuccess)
	return nil
}

func (c *controller) EnsureInitialGeneration(ctx context.Context) error {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return err
	}
	project, err := c.editSession.Project(ctx)
	if err != nil {
		return err
	}
	if !project.NeedsInitialGeneration() {
		return nil
	}

	if err := c.acquire(ctx, s.UUID); err != nil {
		return err
	}
	defer c.release(ctx, s.UUID)

	// The originating prompt is already the sole history entry; it becomes
	// the instruction and nothing is replayed.
	c.run(ctx, project.History[0].Text, "", nil, MessageInitialDesign)
	return nil
}

func (c *controller) InFlight(ctx context.Context) (bool, error) {
	s, err := c.sessions.GetFromContext(ctx)
	if err != nil {
		return false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight[s.UUID], nil
}

// run executes one generation and lands the outcome: replace + fixed
// assistant turn + save on success, a single fixed failure turn otherwise.
func (c *controller) run(ctx context.Context, instruction string, currentDocument string, history []entity.ChatTurn, successMessage string) {
	document, err := c.generator.Generate(ctx, instruction, currentDocument, history)
	if err != nil {
		c.stats.Counter(_counterFailure).Inc(1)
		c.logger.Errorw("generation failed", zap.Error(err))
		c.appendAssistantTurn(ctx, MessageGenerationFailure)
		return
	}

	if err := c.editSession.ReplaceDocument(ctx, document, editsession.OriginGeneration); err != nil {
		c.stats.Counter(_counterFailure).Inc(1)
		c.logger.Errorw("landing generated document", zap.Error(err))
		c.appendAssistantTurn(ctx, MessageGenerationFailure)
		return
	}

	c.stats.Counter(_counterSuccess).Inc(1)
	c.appendAssistantTurn(ctx, successMessage)

	if _, err := c.editSession.Save(ctx); err != nil {
		c.logger.Errorw("saving after generation", zap.Error(err))
	}
}

func (c *controller) appendAssistantTurn(ctx context.Context, text string) {
	if err := c.editSession.AppendTurn(ctx, entity.ChatTurn{
		Speaker:   entity.SpeakerAssistant,
		Text:      text,
		Timestamp: c.clock.Now(),
	}); err != nil {
		c.logger.Errorw("appending assistant turn", zap.Error(err))
	}
}

func (c *controller) acquire(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	if c.inFlight[id] {
		c.mu.Unlock()
		c.stats.Counter(_counterRefused).Inc(1)
		return weavererrors.ErrGenerationInFlight
	}
	c.inFlight[id] = true
	c.mu.Unlock()

	if err := c.studio.GenerationState(ctx, true); err != nil {
		c.logger.Debugw("notifying generation state", zap.Error(err))
	}
	return nil
}

func (c *controller) release(ctx context.Context, id uuid.UUID) {
	c.mu.Lock()
	delete(c.inFlight, id)
	c.mu.Unlock()

	if err := c.studio.GenerationState(ctx, false); err != nil {
		c.logger.Debugw("notifying generation state", zap.Error(err))
	}
}
