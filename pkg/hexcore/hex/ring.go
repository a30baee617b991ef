package hex

// Ring returns the axial coordinates at exact distance k from center c,
// starting from direction 4 (south-west) and proceeding anticlockwise.
// If k==0, returns [c].
func Ring(c Axial, k int) []Axial {
	if k <= 0 {
		return []Axial{c}
	}
	res := make([]Axial, 0, 6*k)
	cur := c.Add(Directions[4].Mul(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return res
}

// Disk returns all axial coordinates at distance <= k from center c, ordered
// by q then r.
func Disk(c Axial, k int) []Axial {
	if k < 0 {
		return nil
	}
	res := make([]Axial, 0, 1+3*k*(k+1))
	for q := -k; q <= k; q++ {
		for r := max(-k, -q-k); r <= min(k, -q+k); r++ {
			res = append(res, c.Add(Axial{q, r}))
		}
	}
	return res
}
