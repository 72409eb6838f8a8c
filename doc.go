// Package droid describes Android applications decoded from .apk
// archives without invoking apktool, aapt or any other external toolchain.
package droid
