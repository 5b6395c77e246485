package replay

// FormatVersion is written into every recording.
const FormatVersion = "2.0"

// FrameInput records input state for a single tick
type FrameInput struct {
	F  int     `json:"f"`            // Tick number
	L  bool    `json:"l,omitempty"`  // Left
	R  bool    `json:"r,omitempty"`  // Right
	U  bool    `json:"u,omitempty"`  // Up
	D  bool    `json:"d,omitempty"`  // Down
	S  bool    `json:"s,omitempty"`  // Shield
	SX int     `json:"sx,omitempty"` // ShieldX
	SY int     `json:"sy,omitempty"` // ShieldY
	DT float64 `json:"dt"`           // Frame delta in seconds, before clamping
}

// ReplayData contains all data needed to replay one level run
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
