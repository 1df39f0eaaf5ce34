package glyph

import (
	"fmt"
	"math"
)

// Joint is a named anchor point of a skeleton.
type Joint struct {
	Name string
	Point
}

// RefLine is a labeled logical segment between two joints. It is used for
// skeleton display and editing only, never for outline geometry.
type RefLine struct {
	Name       string
	Start, End string
}

// NewRefLine returns a reference line named "start-end".
func NewRefLine(start, end string) RefLine {
	return RefLine{Name: start + "-" + end, Start: start, End: end}
}

// BoneKind distinguishes straight and bent centerline pieces.
type BoneKind uint8

const (
	// BoneLine is a straight piece between two joints.
	BoneLine BoneKind = iota
	// BoneBend is a shallow quadratic piece: start, control, end joints.
	BoneBend
)

// Bone is one piece of a skeleton's centerline. Joints holds the joint names
// in traversal order: two for a line, three (start, control, end) for a bend.
type Bone struct {
	Kind   BoneKind
	Joints []string
}

// CornerKind selects how the junction between two consecutive bones is
// rendered.
type CornerKind uint8

const (
	// CornerTurn is a sharp turn (折). It stays sharp unless the turn style
	// asks for a bulge.
	CornerTurn CornerKind = iota
	// CornerBend is a smooth bend filleted with the large nominal radius.
	CornerBend
	// CornerHook is a terminal hook filleted with the small nominal radius.
	CornerHook
)

// Skeleton is the centerline description of one stroke. Skeletons are
// values: a parameter change produces a new skeleton.
type Skeleton struct {
	Archetype string
	Joints    []Joint
	RefLines  []RefLine
	Bones     []Bone
	// Corners[k] describes the junction between Bones[k] and Bones[k+1].
	Corners []CornerKind
	// Reversed swaps which side of the centerline the offset engine treats
	// as the outer boundary.
	Reversed bool
}

// Joint looks up a joint by name.
func (s Skeleton) Joint(name string) (Joint, bool) {
	for _, j := range s.Joints {
		if j.Name == name {
			return j, true
		}
	}
	return Joint{}, false
}

// Point returns the position of the named joint, or the origin if the joint
// does not exist.
func (s Skeleton) Point(name string) Point {
	j, _ := s.Joint(name)
	return j.Point
}

// Validate checks that joint names are unique, every bone and reference
// line refers to existing joints, and bones are chained end to start.
func (s Skeleton) Validate() error {
	seen := make(map[string]struct{}, len(s.Joints))
	for _, j := range s.Joints {
		if _, dup := seen[j.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateJoint, j.Name)
		}
		seen[j.Name] = struct{}{}
	}
	if len(s.Bones) == 0 {
		return ErrEmptySkeleton
	}
	for i, b := range s.Bones {
		want := 2
		if b.Kind == BoneBend {
			want = 3
		}
		if len(b.Joints) != want {
			return fmt.Errorf("%w: bone %d has %d joints, want %d", ErrUnknownJoint, i, len(b.Joints), want)
		}
		for _, name := range b.Joints {
			if _, ok := seen[name]; !ok {
				return fmt.Errorf("%w: bone %d refers to %q", ErrUnknownJoint, i, name)
			}
		}
		if i > 0 {
			prev := s.Bones[i-1]
			if !s.Point(prev.Joints[len(prev.Joints)-1]).Approx(s.Point(b.Joints[0]), DefaultEpsilon) {
				return fmt.Errorf("%w: bone %d ends away from bone %d", ErrBrokenChain, i-1, i)
			}
		}
	}
	for _, r := range s.RefLines {
		if _, ok := seen[r.Start]; !ok {
			return fmt.Errorf("%w: reference line %q refers to %q", ErrUnknownJoint, r.Name, r.Start)
		}
		if _, ok := seen[r.End]; !ok {
			return fmt.Errorf("%w: reference line %q refers to %q", ErrUnknownJoint, r.Name, r.End)
		}
	}
	return nil
}

// Translate returns a copy of the skeleton moved by d.
func (s Skeleton) Translate(d Point) Skeleton {
	out := s
	out.Joints = make([]Joint, len(s.Joints))
	for i, j := range s.Joints {
		out.Joints[i] = Joint{Name: j.Name, Point: j.Point.Add(d)}
	}
	return out
}

// Length returns the total centerline length of the skeleton.
func (s Skeleton) Length() float64 {
	var total float64
	for _, b := range s.Bones {
		total += s.boneSegment(b).Length()
	}
	return total
}

// corner returns the junction kind after bone k, defaulting to a turn.
func (s Skeleton) corner(k int) CornerKind {
	if k < len(s.Corners) {
		return s.Corners[k]
	}
	return CornerTurn
}

// boneSegment returns the centerline geometry of a bone.
func (s Skeleton) boneSegment(b Bone) Segment {
	if b.Kind == BoneBend {
		return QuadSeg(s.Point(b.Joints[0]), s.Point(b.Joints[1]), s.Point(b.Joints[2]))
	}
	return LineSeg(s.Point(b.Joints[0]), s.Point(b.Joints[1]))
}

// skeletonBuilder collects joints in traversal order. A joint shared by two
// consecutive bones is added once and named by both bones.
type skeletonBuilder struct {
	sk Skeleton
}

func newSkeletonBuilder(archetype string) *skeletonBuilder {
	return &skeletonBuilder{sk: Skeleton{Archetype: archetype}}
}

func (b *skeletonBuilder) joint(name string, p Point) *skeletonBuilder {
	b.sk.Joints = append(b.sk.Joints, Joint{Name: name, Point: sanitize(p)})
	return b
}

func (b *skeletonBuilder) line(start, end string) *skeletonBuilder {
	b.sk.Bones = append(b.sk.Bones, Bone{Kind: BoneLine, Joints: []string{start, end}})
	b.sk.RefLines = append(b.sk.RefLines, NewRefLine(start, end))
	return b
}

func (b *skeletonBuilder) bend(start, ctrl, end string) *skeletonBuilder {
	b.sk.Bones = append(b.sk.Bones, Bone{Kind: BoneBend, Joints: []string{start, ctrl, end}})
	b.sk.RefLines = append(b.sk.RefLines, NewRefLine(start, ctrl), NewRefLine(ctrl, end))
	return b
}

func (b *skeletonBuilder) corner(k CornerKind) *skeletonBuilder {
	b.sk.Corners = append(b.sk.Corners, k)
	return b
}

func (b *skeletonBuilder) reversed() *skeletonBuilder {
	b.sk.Reversed = true
	return b
}

func (b *skeletonBuilder) build() Skeleton {
	return b.sk
}

// sanitize replaces non-finite coordinates with zero so degenerate
// parameters never leak NaN into later stages.
func sanitize(p Point) Point {
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
		p.X = 0
	}
	if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		p.Y = 0
	}
	return p
}
