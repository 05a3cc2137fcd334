package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const paneAnimationDuration = 200 * time.Millisecond

// AnimatePaneShow smoothly reveals a pane (preview, tree) by growing it
// from zero to its minimum size.
func AnimatePaneShow(obj fyne.CanvasObject) {
	final := obj.MinSize()
	obj.Resize(fyne.NewSize(0, 0))
	obj.Show()
	anim := canvas.NewSizeAnimation(fyne.NewSize(0, 0), final, paneAnimationDuration, func(s fyne.Size) {
		obj.Resize(s)
	})
	anim.Curve = fyne.AnimationEaseOut
	anim.Start()
}

// AnimatePaneHide shrinks the pane to zero and hides it, restoring the
// original size afterwards so the next Show starts from a sane state.
func AnimatePaneHide(obj fyne.CanvasObject) {
	start := obj.Size()
	anim := canvas.NewSizeAnimation(start, fyne.NewSize(0, 0), paneAnimationDuration, func(s fyne.Size) {
		obj.Resize(s)
	})
	anim.Curve = fyne.AnimationEaseIn
	anim.SetCompletionCallback(func() {
		obj.Hide()
		obj.Resize(start)
	})
	anim.Start()
}

// ToolbarButton is a widget.Button whose Show/Hide are animated, used for
// the history buttons that appear and disappear with navigation state.
type ToolbarButton struct {
	*widget.Button
}

// NewToolbarButton creates an animated icon button for the toolbar.
func NewToolbarButton(icon fyne.Resource, tapped func()) *ToolbarButton {
	return &ToolbarButton{Button: widget.NewButtonWithIcon("", icon, tapped)}
}

// Show reveals the button with animation.
func (b *ToolbarButton) Show() {
	AnimatePaneShow(b.Button)
}

// Hide conceals the button with animation.
func (b *ToolbarButton) Hide() {
	AnimatePaneHide(b.Button)
}
