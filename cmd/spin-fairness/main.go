package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"spinWheelServer/crypto"
	"spinWheelServer/game"
)

func main() {
	batches := flag.Int("batches", 5, "number of batches to run")
	spins := flag.Int("spins", 1000, "spins per batch")
	sectors := flag.Int("sectors", game.DefaultSectors, "wheel sector count (2-8)")
	flag.Parse()

	if *sectors < game.MinSectors || *sectors > game.MaxSectors {
		log.Fatalf("❌ sectors must be between %d and %d, got %d", game.MinSectors, game.MaxSectors, *sectors)
	}
	if *batches < 1 || *spins < 1 {
		log.Fatal("❌ batches and spins must be positive")
	}

	fmt.Printf("🎡 Running %d batches of %d spins on a %d-sector wheel...\n\n", *batches, *spins, *sectors)

	totals := make([]int, *sectors)
	for batch := 1; batch <= *batches; batch++ {
		counts := runBatch(*spins, *sectors)

		parts := make([]string, len(counts))
		for i, c := range counts {
			totals[i] += c
			parts[i] = fmt.Sprintf("%s %.1f%%", game.DefaultLabel(i), percent(c, *spins))
		}
		fmt.Printf("Batch %d: %s\n", batch, strings.Join(parts, " | "))
	}

	all := *batches * *spins
	expected := 100.0 / float64(*sectors)
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Overall (%d spins, expected %.2f%% each):\n", all, expected)
	for i, c := range totals {
		fmt.Printf("  %-10s %6d  %6.2f%%  (%+.2f)\n", game.DefaultLabel(i), c, percent(c, all), percent(c, all)-expected)
	}
	fmt.Println(strings.Repeat("=", 60))
}

// runBatch spins the wheel the same way a live session does: a fresh server
// seed and spin id per spin, replayed through VerifySpin.
func runBatch(spins, sectors int) []int {
	counts := make([]int, sectors)
	for i := 0; i < spins; i++ {
		serverSeed, _ := crypto.GenerateServerSeed()
		result := game.VerifySpin(serverSeed, uuid.NewString(), sectors)
		counts[result.Index]++
	}
	return counts
}

func percent(n, total int) float64 {
	return float64(n) * 100 / float64(total)
}
