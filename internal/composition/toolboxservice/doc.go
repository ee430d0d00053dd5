// Package toolboxservice composes the tool domains into one service that the
// JSON-RPC adapter and the CLI call.
//
// Responsibilities:
// - Gate optional tools on the capability set built from config.
// - Record a metric sample and a structured log line for every invocation.
// - Classify failures into the input / capability / network / tool taxonomy.
//
// Non-responsibilities:
// - Tool rules and formats (implemented in internal/domains/*).
// - Wire decoding and error codes (implemented in internal/adapters/rpc).
package toolboxservice
