package scalespace

import (
	"fmt"

	"github.com/jvlmdr/go-cv/rimg64"
)

func sizeStr(x *rimg64.Multi) string {
	if x == nil {
		return "nil"
	}
	return fmt.Sprintf("%dx%dx%d", x.Width, x.Height, x.Channels)
}
