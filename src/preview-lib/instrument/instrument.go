// Package instrument produces an augmented copy of a document that becomes
// interactively editable when rendered in an isolated context. The host has
// no direct access to the rendered structure; the injected behavior reports
// selections and applies updates purely through preview envelopes.
package instrument

import "strings"

const (
	// MarkerClass is the transient class used to outline the selected node.
	// It is stripped from every payload that leaves the sandbox, so the host
	// never observes it as real document state.
	MarkerClass = "sw-highlight"

	// IdentityPrefix prefixes every identity minted for a node that lacks one.
	IdentityPrefix = "sw-"

	// IdentityLength is the number of base-36 characters following the prefix.
	IdentityLength = 9

	// TextLimit bounds the innerText carried by a selection payload.
	TextLimit = 50
)

const (
	_closeBody = "</body>"
	_closeHTML = "</html>"
)

// script is the behavior block injected into every previewed document. It is
// the browser-side twin of the sandbox package: capture-phase selection,
// lazy identity minting, permanent click suppression, and update application
// with a full marker-stripped document reply.
const script = `<script>
(function () {
  var MARKER = "` + MarkerClass + `";

  var style = document.createElement("style");
  style.innerHTML = "." + MARKER + " { outline: 2px solid #3b82f6 !important; cursor: pointer !important; }";
  document.head.appendChild(style);

  function mintIdentity() {
    var alphabet = "0123456789abcdefghijklmnopqrstuvwxyz";
    var id = "` + IdentityPrefix + `";
    for (var i = 0; i < ` + "9" + `; i++) {
      id += alphabet[Math.floor(Math.random() * alphabet.length)];
    }
    return id;
  }

  function stripMarker(classes) {
    return (classes || "").replace(MARKER, "").replace(/\s+/g, " ").trim();
  }

  document.addEventListener("mousedown", function (e) {
    if (e.button !== 0) return;
    e.preventDefault();
    e.stopPropagation();

    var target = e.target;

    document.querySelectorAll("." + MARKER).forEach(function (el) {
      el.classList.remove(MARKER);
    });
    target.classList.add(MARKER);

    if (!target.id) {
      target.id = mintIdentity();
    }

    window.parent.postMessage({
      type: "ELEMENT_SELECTED",
      payload: {
        id: target.id,
        tagName: target.tagName.toLowerCase(),
        text: (target.innerText || "").substring(0, ` + "50" + `),
        classes: stripMarker(target.className)
      }
    }, "*");
  }, true);

  // The preview is for editing, never for navigating away.
  document.addEventListener("click", function (e) {
    e.preventDefault();
    e.stopPropagation();
  }, true);

  window.addEventListener("message", function (e) {
    if (!e.data || e.data.type !== "UPDATE_ELEMENT") return;
    var payload = e.data.payload || {};
    var el = document.getElementById(payload.id);
    if (!el) return;

    if (payload.text !== undefined && payload.text !== null) {
      el.innerText = payload.text;
    }
    if (payload.classes !== undefined && payload.classes !== null) {
      el.className = (stripMarker(payload.classes) + " " + MARKER).trim();
    }

    var clone = document.documentElement.cloneNode(true);
    clone.querySelectorAll("." + MARKER).forEach(function (n) {
      n.classList.remove(MARKER);
    });
    clone.querySelectorAll("[class='']").forEach(function (n) {
      n.removeAttribute("class");
    });

    window.parent.postMessage({
      type: "HTML_UPDATED",
      payload: clone.outerHTML
    }, "*");
  });
})();
</script>`

// Instrument appends the editing behavior to a document. The block lands
// immediately before </body> when present, else before </html>, else at the
// end. Every byte of the input outside the injection point is preserved.
func Instrument(document string) string {
	if idx := strings.Index(document, _closeBody); idx >= 0 {
		return document[:idx] + script + document[idx:]
	}
	if idx := strings.Index(document, _closeHTML); idx >= 0 {
		return document[:idx] + script + document[idx:]
	}
	return document + script
}

// Script exposes the injected behavior block. Useful for callers that embed
// the preview in their own shell rather than through Instrument.
func Script() string {
	return script
}
