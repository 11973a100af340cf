// Package win32 implements the glaze platform interfaces on Windows using
// the user32 windowing primitives. Layered-window alpha blending is resolved
// dynamically on every application so that missing OS support degrades to a
// silent no-op instead of an error.
package win32
