package utils

// LinspaceMid returns the num cell midpoints of [start, end] split into num cells
func LinspaceMid(start, end float64, num int) (x []float64, step float64) {
	if num <= 0 {
		return
	}
	step = (end - start) / float64(num)
	x = make([]float64, num)
	for i := range x {
		x[i] = start + (float64(i)+0.5)*step
	}
	return
}
