package budget_test

import (
	"errors"
	"fmt"

	gferrors "github.com/vnykmshr/floodgate/pkg/common/errors"
	"github.com/vnykmshr/floodgate/pkg/ratelimit/budget"
)

// Example demonstrates a window of three rebroadcasts per originator.
func Example() {
	b, err := budget.New(3)
	if err != nil {
		panic(fmt.Sprintf("Failed to create budget: %v", err))
	}

	results := make([]bool, 0, 5)
	for i := 0; i < 5; i++ {
		ok, _ := b.TryTake(0xAB)
		results = append(results, ok)
	}
	fmt.Println(results)

	b.Reset()
	ok, _ := b.TryTake(0xAB)
	fmt.Println("after reset:", ok)

	// Output:
	// [true true true false false]
	// after reset: true
}

// Example_invalidAddress shows the error returned for the reserved address.
func Example_invalidAddress() {
	b, _ := budget.New(3)

	_, err := b.TryTake(0xFF)

	var argErr *gferrors.ArgumentError
	if errors.As(err, &argErr) {
		fmt.Println(argErr.Field, argErr.Value, argErr.Bound())
	}
	fmt.Println(err)

	// Output:
	// address 255 255
	// budget: address=255 must be < 255
}
