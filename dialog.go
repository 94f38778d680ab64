package main

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/gotk3/gotk3/gtk"
	"github.com/stewi1014/gltriangle/window"
)

// CatchPanic turns a panic into a failed exit status and an error carrying
// the stack.
func CatchPanic(code *int, errp *error) {
	if v := recover(); v != nil {
		err, ok := v.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", v)
		}
		err = fmt.Errorf("%w\n%v", err, string(debug.Stack()))
		slog.Error("panic", "error", err)

		*code = window.ExitFailure
		*errp = err
	}
}

// ShowErrorDialog shows err in a GTK message dialog and blocks until it is
// closed. It does nothing beyond logging when GTK cannot open a display.
func ShowErrorDialog(err error) {
	if initErr := gtk.InitCheck(nil); initErr != nil {
		slog.Warn("cannot show error dialog", "error", initErr)
		return
	}

	dialog := gtk.MessageDialogNew(
		nil,
		gtk.DIALOG_MODAL,
		gtk.MESSAGE_ERROR,
		gtk.BUTTONS_CLOSE,
		"gltriangle failed",
	)
	dialog.FormatSecondaryText("%s", err.Error())
	dialog.SetTitle("gltriangle")
	dialog.SetKeepAbove(true)
	dialog.Run()
	dialog.Destroy()
}
