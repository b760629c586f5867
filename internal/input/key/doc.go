// Package key provides keyboard event types for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Code: a virtual key code as reported by the host ("C" is 67, Enter is 13)
//   - Modifier: the masked modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: a normalized key-down, key-up or text-input event
//   - Shortcut: a modifier + key code combination that the root intercepts
//     before ordinary key routing (copy and paste)
//
// # Shortcut Specifications
//
// Shortcuts are configured as strings:
//
//   - "Ctrl+C", "ctrl+v", "Meta+C"
//   - "Ctrl+Shift+Z", "Alt+F4"
package key
