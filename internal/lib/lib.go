// Package lib acts as a library for modules that do not fit strictly
// into other layers.
//
// It contains background job dispatching and the email notification
// client.
package lib
