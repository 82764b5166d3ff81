package game

// VerifySpin replays a committed spin from its server seed and spin id and
// returns where it landed for a wheel of sectorCount unnamed sectors.
// Given the same inputs it always returns the same result.
func VerifySpin(serverSeed, spinID string, sectorCount int) Result {
	sectorCount = max(MinSectors, min(MaxSectors, sectorCount))

	total := SpinDegrees(SpinFraction(serverSeed, spinID))
	rotation := FinalRotation(total)
	index := WinningIndex(rotation, sectorCount)

	return Result{
		Index:        index,
		Label:        DefaultLabel(index),
		Rotation:     rotation,
		TotalDegrees: total,
	}
}
