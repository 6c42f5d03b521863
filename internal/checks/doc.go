// Package checks implements the consistency audit over a part catalog and its
// backend databases: seven independent checks, the engine that evaluates them
// eagerly in a fixed order, and the text renderer for their result tables.
package checks
