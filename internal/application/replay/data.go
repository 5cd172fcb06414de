package replay

// FrameInput records one frame of player input.
type FrameInput struct {
	F   int     `json:"f"`             // frame number
	Dir int     `json:"dir,omitempty"` // board.Direction
	Dt  float64 `json:"dt"`            // frame delta in seconds
}

// Data contains everything needed to replay a session: the rng seed the
// entities were built with, the starting lives, and the input frames.
type Data struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Lives     int          `json:"lives"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
