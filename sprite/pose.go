package sprite

// Pose is the horizontal limb displacement, in pixels, for one walk frame.
// Negative values move a limb left.
type Pose struct {
	LeftArm  int
	RightArm int
	LeftLeg  int
	RightLeg int
}

// walkCycle is indexed by frame. Frames 0 and 2 swing the limbs in opposite
// directions; 1 and 3 are the passing positions.
var walkCycle = [FrameCount]Pose{
	{LeftArm: -2, RightArm: 2, LeftLeg: 2, RightLeg: -2},
	{},
	{LeftArm: 2, RightArm: -2, LeftLeg: -2, RightLeg: 2},
	{},
}

// PoseFor returns the pose for a frame index. Out of range indices wrap.
func PoseFor(frame int) Pose {
	i := frame % FrameCount
	if i < 0 {
		i += FrameCount
	}
	return walkCycle[i]
}
