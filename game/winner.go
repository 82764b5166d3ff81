package game

import (
	"fmt"
	"math"
	"strings"
)

const (
	// PointerAngle is where the fixed pointer sits in screen space: straight
	// up, with 0 pointing right and angles growing clockwise.
	PointerAngle = 3 * math.Pi / 2

	fullTurn = 2 * math.Pi
)

// ToRadians converts degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// EaseOutCubic maps linear progress in [0,1] to 1-(1-p)^3.
func EaseOutCubic(progress float64) float64 {
	return 1 - math.Pow(1-progress, 3)
}

// SpinDegrees turns a uniform fraction in [0,1) into a total spin of at
// least MinSpinDegrees.
func SpinDegrees(fraction float64) float64 {
	return fraction*360 + MinSpinDegrees
}

// FinalRotation is the rotation the wheel snaps to when a spin of
// totalDegrees completes, normalised to [0, 2π).
func FinalRotation(totalDegrees float64) float64 {
	return math.Mod(ToRadians(totalDegrees), fullTurn)
}

// PointerRelativeAngle is the wheel angle under the pointer, in [0, 2π).
func PointerRelativeAngle(rotation float64) float64 {
	return math.Mod(math.Mod(PointerAngle-rotation, fullTurn)+fullTurn, fullTurn)
}

// WinningIndex returns the sector under the pointer for the given rotation.
func WinningIndex(rotation float64, sectorCount int) int {
	if sectorCount <= 0 {
		return 0
	}
	arcSpan := fullTurn / float64(sectorCount)
	index := int(math.Floor(PointerRelativeAngle(rotation)/arcSpan)) % sectorCount
	if index < 0 {
		index = 0
	}
	return index
}

// DefaultLabel is the placeholder shown for an unnamed sector (1-indexed).
func DefaultLabel(index int) string {
	return fmt.Sprintf("Option %d", index+1)
}

// LabelAt returns labels[index], or the default label when it is blank or
// missing.
func LabelAt(labels []string, index int) string {
	if index < 0 || index >= len(labels) || strings.TrimSpace(labels[index]) == "" {
		return DefaultLabel(index)
	}
	return labels[index]
}
