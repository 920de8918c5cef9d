package image

import (
	"image"
	"image/color"
	"math"

	"github.com/jmylchreest/lustre/internal/colour"
)

// maxSamples bounds the number of pixels considered when sampling a
// backdrop. Large images are grid sampled down to roughly this count.
const maxSamples = 2000

// dominantClusters is the number of k-means clusters used when picking the
// dominant backdrop colour.
const dominantClusters = 5

// AverageColour returns the mean colour of the image, averaged in
// linear-light space so that the result matches perceived brightness
// rather than encoded values.
func AverageColour(img image.Image) colour.Colour {
	pixels := samplePixels(img)
	if len(pixels) == 0 {
		return colour.FromRGB(0, 0, 0)
	}

	var sumR, sumG, sumB float64
	for _, p := range pixels {
		c := toColour(p)
		r, g, b := c.Linear()
		sumR += r
		sumG += g
		sumB += b
	}
	n := float64(len(pixels))
	return colour.FromLinearRGB(sumR/n, sumG/n, sumB/n)
}

// DominantColour returns the colour of the largest k-means cluster of the
// sampled pixels. The clustering is fully deterministic: centroids are
// seeded by farthest-point traversal from the sample mean, so repeated
// calls on the same image always agree.
func DominantColour(img image.Image) colour.Colour {
	pixels := samplePixels(img)
	if len(pixels) == 0 {
		return colour.FromRGB(0, 0, 0)
	}

	points := make([]point3D, len(pixels))
	for i, p := range pixels {
		c := toColour(p)
		points[i] = point3D{
			R: float64(c.R),
			G: float64(c.G),
			B: float64(c.B),
		}
	}

	k := dominantClusters
	if len(points) < k {
		k = len(points)
	}

	centroids, weights := kmeans(points, k)

	best := 0
	for i, w := range weights {
		if w > weights[best] {
			best = i
		}
	}
	c := centroids[best]
	return colour.FromRGB(quantise(c.R), quantise(c.G), quantise(c.B))
}

// point3D is a pixel in 8-bit RGB coordinates.
type point3D struct {
	R, G, B float64
}

func (p point3D) distance(q point3D) float64 {
	dr := p.R - q.R
	dg := p.G - q.G
	db := p.B - q.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// samplePixels samples pixels from the image.
// For large images, we sample a subset to improve performance.
func samplePixels(img image.Image) []color.Color {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	totalPixels := width * height

	if totalPixels <= maxSamples {
		// Small image, sample all pixels.
		pixels := make([]color.Color, 0, totalPixels)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				pixels = append(pixels, img.At(x, y))
			}
		}
		return pixels
	}

	// Large image, use grid sampling.
	// Calculate step size to get approximately maxSamples.
	step := max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)

	pixels := make([]color.Color, 0, maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			pixels = append(pixels, img.At(x, y))
			if len(pixels) >= maxSamples {
				return pixels
			}
		}
	}

	return pixels
}

// kmeansMaxIterations bounds the clustering loop; convergence is usually
// reached in far fewer passes.
const kmeansMaxIterations = 30

// kmeans clusters the points and returns the centroids with their relative
// cluster sizes. Initialisation is deterministic (farthest point from the
// running centroid set, starting at the sample mean).
func kmeans(points []point3D, k int) ([]point3D, []float64) {
	centroids := initialCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// If very few assignments changed (< 1%), we've converged.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		centroids = recalculateCentroids(points, assignments, k, centroids)
	}

	weights := make([]float64, k)
	for _, a := range assignments {
		weights[a]++
	}
	for i := range weights {
		weights[i] /= float64(len(points))
	}
	return centroids, weights
}

// initialCentroids seeds k centroids: the first is the sample mean, each
// subsequent one the point farthest from all centroids chosen so far.
func initialCentroids(points []point3D, k int) []point3D {
	var mean point3D
	for _, p := range points {
		mean.R += p.R
		mean.G += p.G
		mean.B += p.B
	}
	n := float64(len(points))
	mean.R /= n
	mean.G /= n
	mean.B /= n

	centroids := make([]point3D, 0, k)
	centroids = append(centroids, mean)
	for len(centroids) < k {
		bestIdx, bestDist := 0, -1.0
		for i, p := range points {
			d := math.MaxFloat64
			for _, c := range centroids {
				d = math.Min(d, p.distance(c))
			}
			if d > bestDist {
				bestIdx, bestDist = i, d
			}
		}
		centroids = append(centroids, points[bestIdx])
	}
	return centroids
}

func nearestCentroid(p point3D, centroids []point3D) int {
	best, bestDist := 0, math.MaxFloat64
	for i, c := range centroids {
		if d := p.distance(c); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// recalculateCentroids moves each centroid to the mean of its cluster.
// Empty clusters keep their previous centroid.
func recalculateCentroids(points []point3D, assignments []int, k int, prev []point3D) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)
	for i, p := range points {
		a := assignments[i]
		sums[a].R += p.R
		sums[a].G += p.G
		sums[a].B += p.B
		counts[a]++
	}

	centroids := make([]point3D, k)
	for i := range centroids {
		if counts[i] == 0 {
			centroids[i] = prev[i]
			continue
		}
		n := float64(counts[i])
		centroids[i] = point3D{R: sums[i].R / n, G: sums[i].G / n, B: sums[i].B / n}
	}
	return centroids
}

// toColour converts a stdlib colour (16-bit premultiplied) to an engine
// colour.
func toColour(c color.Color) colour.Colour {
	r, g, b, _ := c.RGBA()
	return colour.FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func quantise(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
