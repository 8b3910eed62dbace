package middleware

import (
	"fmt"

	"github.com/delaneyj/reactor/reactor"
)

// Kind names the dynamic type of e, e.g. "main.Increment".
func Kind(e reactor.Event) string {
	return fmt.Sprintf("%T", e)
}
