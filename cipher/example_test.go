package cipher_test

import (
	"fmt"

	"github.com/katalvlaran/routecipher/cipher"
)

// ExampleEncode encodes the classic route-cipher message on a 9×3 grid.
// The 25 letters leave two padding cells, read early on the first leg.
func ExampleEncode() {
	out, err := cipher.Encode(9, 3, "WE ARE DISCOVERED. FLEE AT ONCE")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)

	// Output:
	// CEXXECNOTAEOWEAREDISLFDEREV
}

// ExampleCipher_Trace shows the first steps of the route with the rune read at each.
func ExampleCipher_Trace() {
	steps, _ := cipher.New(3, 3).Trace("ABCDEFGHI")
	for _, s := range steps[:4] {
		fmt.Printf("%v %c\n", s.Point, s.Char)
	}

	// Output:
	// (2,0) C
	// (2,1) F
	// (2,2) I
	// (1,2) H
}
