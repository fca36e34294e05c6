// Package gtkhost renders the checkout overlay elements as GTK4 widgets
// stacked in a gtk.Overlay. All methods must run on the GLib main context.
// It is only built with the webkit_cgo tag.
package gtkhost
