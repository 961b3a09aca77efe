// Package coursechat provides a conversational lookup service over a
// course catalog. It resolves free-text questions against an in-memory
// catalog of course records, falling back to an external LLM when no
// catalog match is adequate: first to suggest a canonical course name,
// then to produce a general answer.
//
// This package contains domain types, pure pipeline components (intent
// classification, matching, response rendering) and interfaces following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., gemini/,
// fs/, mem/).
package coursechat
