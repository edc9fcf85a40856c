// doc-center is the document knowledge base server.
package main

import (
	"github.com/kart-io/doc-center/internal/doccenter"
)

func main() {
	doccenter.NewApp().Run()
}
