package sketch

// CommandType identifies the kind of a queued command.
type CommandType uint8

const (
	CmdLine        CommandType = iota // Stroke a straight line
	CmdEllipse                        // Stroke an ellipse outline
	CmdFillEllipse                    // Fill an ellipse
	CmdImage                          // Draw an image once it has loaded
	CmdText                           // Draw a single line of text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdLine:        "Line",
	CmdEllipse:     "Ellipse",
	CmdFillEllipse: "FillEllipse",
	CmdImage:       "Image",
	CmdText:        "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is a queued drawing primitive. Commands are values: the style in
// effect when a command was appended is copied into it.
//
// The concrete types are LineCommand, EllipseCommand, FillEllipseCommand,
// ImageCommand and TextCommand.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// LineCommand strokes a line from (X1, Y1) to (X2, Y2).
type LineCommand struct {
	Color       string
	StrokeWidth float64
	X1, Y1      float64
	X2, Y2      float64
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// EllipseCommand strokes the outline of the ellipse inscribed in the box
// (X, Y, W, H). W and H may be negative.
type EllipseCommand struct {
	Color       string
	StrokeWidth float64
	X, Y, W, H  float64
}

// Type implements Command.
func (EllipseCommand) Type() CommandType { return CmdEllipse }

// FillEllipseCommand fills the ellipse inscribed in the box (X, Y, W, H).
type FillEllipseCommand struct {
	Color      string
	X, Y, W, H float64
}

// Type implements Command.
func (FillEllipseCommand) Type() CommandType { return CmdFillEllipse }

// ImageCommand draws the image at Source scaled into (X, Y, W, H).
type ImageCommand struct {
	Source     string
	X, Y, W, H float64
}

// Type implements Command.
func (ImageCommand) Type() CommandType { return CmdImage }

// TextCommand draws Text with its baseline starting at (X, Y).
// Font is the descriptor in effect when the command was appended.
type TextCommand struct {
	Color string
	Font  string
	Text  string
	X, Y  float64
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }
