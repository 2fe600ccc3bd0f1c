package sketch

import "testing"

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{LineCommand{}, "Line"},
		{EllipseCommand{}, "Ellipse"},
		{FillEllipseCommand{}, "FillEllipse"},
		{ImageCommand{}, "Image"},
		{TextCommand{}, "Text"},
	}
	for _, tt := range tests {
		if got := tt.cmd.Type().String(); got != tt.want {
			t.Errorf("%T.Type().String() = %q, want %q", tt.cmd, got, tt.want)
		}
	}
	if got := CommandType(200).String(); got != "Unknown" {
		t.Errorf("CommandType(200).String() = %q, want %q", got, "Unknown")
	}
}

func TestCommandsReturnsCopy(t *testing.T) {
	sc := newTestContext(t, 50, 50, &recordCanvas{})
	sc.DrawLine(0, 0, 1, 1)

	cmds := sc.Commands()
	cmds[0] = TextCommand{Text: "changed"}
	if sc.Commands()[0].Type() != CmdLine {
		t.Error("mutating Commands() result changed the queue")
	}
}
