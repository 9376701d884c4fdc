// Package widgets provides the concrete controls: Button, Checkbox,
// RadioButton, ScrollBar, ProgressBar, ToggleSwitch and Heading.
//
// Each control embeds [widget.Base] and supplies the behaviour hooks the
// interaction controller calls. Controls are created against a container
// and are immediately drawn into it:
//
//	btn := widgets.NewButton(win)
//	btn.SetText("Increment")
//	btn.Move(12, 640)
//	btn.OnClick(func() { bar.Increment() })
//
// Domain callbacks (OnClick, OnChange, OnScroll, OnProgress, OnStateChange,
// OnToggle) hold a single function each; setting one replaces the previous.
// Every control additionally publishes on its generic notification channel
// (see [widget.Base.Subscribe]) when its action commits.
//
// Colours come from the container's theme when it implements
// [theme.Provider], and from [theme.Default] otherwise.
//
// Controls must only be used from the host's event thread.
package widgets
