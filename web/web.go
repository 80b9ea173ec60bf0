// Package web carries the static client-side assets embedded into the
// server binary.
package web

import _ "embed"

// AgentJS is the host tag script publishers embed as
// <script src=".../agent.js?id=PUBLISHER" async>.
//
//go:embed agent.js
var AgentJS []byte
