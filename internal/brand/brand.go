// Package brand holds fixed brand assets and identifiers.
package brand

const (
	Name         = "HyperSystem"
	Organization = "Hyper Tech Group"

	Green = "#7DF90B"
	Dark  = "#050817"

	// Logo has black text, LogoWhite is the variant for dark heroes.
	LogoURL         = "https://lh3.googleusercontent.com/d/1eGN1gQqIKeRq5FA-yLxQOqGcV1AaqP4Z"
	LogoWhiteURL    = "https://lh3.googleusercontent.com/d/1jApTkIhlJXq9w-johvc8CdPaYKTnj4F3"
	HeroShowcaseURL = "https://lh3.googleusercontent.com/d/1PYAIPuGV8VyctmdThQyqmuCCp1a0Jghn"
	HeroBackground  = "/assets/img/hero-felt.svg"
)

// CardSuits decorate the hero and footer.
var CardSuits = []string{"♠", "♥", "♦", "♣"}
