// Package styling suggests how a computed route should be drawn.
//
// The presentation layer may ask an external text-generation model for a
// styling recommendation (color, stroke width, glow) tailored to the map
// dimensions, the route, a qualitative complexity label, and whether the
// route is occluded by other drawings. That capability is optional and
// pluggable:
//
//   - Advisor is the capability interface.
//   - StaticAdvisor is the deterministic implementation: it always
//     returns its configured Style and never errors. NewStaticAdvisor
//     yields one holding DefaultStyle() — teal #2EC4B6, stroke width 4,
//     glow enabled — which is the mandated fallback whenever the external
//     call is disabled or fails.
//   - OpenAIAdvisor calls a chat-completion model and parses its
//     free-text reply defensively; every failure mode (transport, empty
//     reply, unparseable text) degrades to the default style instead of
//     propagating.
//
// The shortest-path engine has zero dependency on this package; only the
// rendering collaborator consumes it.
package styling
