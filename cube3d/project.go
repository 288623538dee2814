package cube3d

// Project divides by depth. z must be positive; the pipeline guarantees it by
// choosing a camera distance larger than the model's radius.
//
// aspectCorrection scales x (pass h/w to keep squares square, or 1 for none).
func Project(p Vec3, aspectCorrection float64) Vec2 {
	return Vec2{
		X: p.X * aspectCorrection / p.Z,
		Y: p.Y / p.Z,
	}
}

// ToScreen maps NDC in [-1,1] to pixels in [0,w]×[0,h], origin top-left.
func ToScreen(ndc Vec2, w, h float64) Vec2 {
	half := Vec2{X: w * 0.5, Y: h * 0.5}
	return ndc.MulComp(half).Add(half)
}
