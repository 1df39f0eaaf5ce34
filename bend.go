package glyph

// BendPoint returns the control joint of a bent bone. The point at cursor
// along the chord from start to end is displaced perpendicular to the
// chord by degree; positive degrees bend to the right of travel.
// A zero-length chord yields the chord point itself.
func BendPoint(start, end Point, cursor, degree float64) Point {
	base := start.Lerp(end, cursor)
	n := end.Sub(start).Normalize().PerpCW()
	return base.Add(n.Mul(degree))
}

// BendParams inverts BendPoint: it recovers the cursor and degree that place
// the control joint at bend. The cursor is clamped to [0, 1].
func BendParams(start, end, bend Point) (cursor, degree float64) {
	chord := end.Sub(start)
	l2 := chord.Dot(chord)
	if l2 < DefaultEpsilon*DefaultEpsilon {
		return 0.5, 0
	}
	rel := bend.Sub(start)
	cursor = rel.Dot(chord) / l2
	cursor = min(1, max(0, cursor))
	degree = rel.Dot(chord.Normalize().PerpCW())
	return cursor, degree
}
