package renderer

// ScrollTopThreshold is the vertical offset past which the scroll-to-top
// affordance is shown.
const ScrollTopThreshold = 300

// ShowScrollTop reports whether the affordance is visible at scrollY.
func ShowScrollTop(scrollY float64) bool {
	return scrollY > ScrollTopThreshold
}
