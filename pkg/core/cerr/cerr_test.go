package cerr_test

import (
	"fmt"
	"net/http"

	"github.com/sayara/garagedash/pkg/core/cerr"
)

func ExampleFromStatus() {
	err := cerr.FromStatus(http.StatusNotFound, "client not found")
	fmt.Println(err)
	fmt.Println(cerr.StatusCode(err))
	// Output:
	// [404] client not found
	// 404
}

func ExampleFromStatus_withoutDetail() {
	err := cerr.FromStatus(http.StatusBadGateway, "")
	fmt.Println(err)
	// Output:
	// [502] Bad Gateway
}

func ExampleStatusCode_nonTransportError() {
	fmt.Println(cerr.StatusCode(fmt.Errorf("connection refused")))
	// Output:
	// 0
}
