package geom

// GenShape returns a regular polygon with the given number of sides,
// every vertex at distance size from the origin, vertex 0 on the +x axis.
func GenShape(sides int, size float64) (*Polygon, error) {
	if sides < 3 {
		return nil, ErrDegenerate
	}
	pts := make([]Point, sides)
	step := 360.0 / float64(sides)
	for i := range pts {
		v := FromAngle(size, step*float64(i))
		pts[i] = Point{v.X, v.Y}
	}
	return NewPolygon(pts)
}

// Square returns an axis-aligned square of the given side centered on c
func Square(c Point, side float64) *Polygon {
	h := side / 2
	return MustPolygon([]Point{
		{c.X - h, c.Y - h},
		{c.X + h, c.Y - h},
		{c.X + h, c.Y + h},
		{c.X - h, c.Y + h},
	})
}
