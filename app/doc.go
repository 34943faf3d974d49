// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package app runs the one-shot ggshapes render pass.
//
// [Run] waits for the [Platform] to become ready, loads the configured image,
// acquires and sizes the canvas, then calls [Render] once. Nothing is drawn
// again afterwards, not even when the viewport changes.
//
// The same pass runs headless through [Headless], which renders into an
// in-memory canvas from the surface registry, and in a browser through the
// js/wasm platform.
package app
