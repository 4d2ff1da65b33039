// Command pageload demonstrates the full lazyload lifecycle against a
// simulated page: elements are discovered by selector, revealed as the
// viewport scrolls over them, one load fails and is retried when
// connectivity returns.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sajjadeakbari/lazyload"
	"github.com/sajjadeakbari/lazyload/controller"
	"github.com/sajjadeakbari/lazyload/dom"
	"github.com/sajjadeakbari/lazyload/dom/htmlnode"
	"github.com/sajjadeakbari/lazyload/oteladapters"
)

const pageHTML = `<!DOCTYPE html>
<html>
<body>
	<img class="lazyload" id="hero" data-src="hero.jpg" alt="hero">
	<img class="lazyload" id="teaser" data-src="teaser.jpg" alt="teaser">
	<div class="lazyload" id="banner" data-src="banner.jpg"></div>
	<img class="lazyload" id="footer" data-src="footer.jpg" alt="footer">
</body>
</html>`

func main() {
	page, err := htmlnode.Parse(strings.NewReader(pageHTML))
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse page: %v\n", err)
		os.Exit(1)
	}

	env := newSimEnvironment()

	// Lay the elements out down the page, one viewport apart.
	elements := page.QuerySelectorAll(".lazyload")
	for i, el := range elements {
		env.placeElement(el, i*900)
	}

	logger := oteladapters.NewSlogLoggerWithHandler(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	ctrl, err := controller.New(env,
		controller.WithDocument(page),
		controller.WithLogger(logger),
		controller.WithCallbacks(lazyload.Callbacks{
			OnEnter: func(el dom.Element) {
				fmt.Printf(">> %s entered the viewport\n", elementID(el))
			},
			OnLoad: func(el dom.Element) {
				fmt.Printf(">> %s loaded\n", elementID(el))
			},
			OnError: func(el dom.Element, err error) {
				fmt.Printf(">> %s failed: %v\n", elementID(el), err)
			},
		}),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create controller: %v\n", err)
		os.Exit(1)
	}
	defer ctrl.Destroy()

	// The teaser's load will fail the first time around: the network drops
	// while we scroll.
	env.failNextLoadOf(elementByID(elements, "teaser"))

	fmt.Println("-- scrolling down the page --")
	for offset := 0; offset <= 2700; offset += 900 {
		env.scrollTo(offset)
	}

	fmt.Println("-- connectivity restored, teaser gets a second chance --")
	elementByID(elements, "teaser").SetAttr("data-src", "teaser.jpg")
	env.restoreConnectivity()
	env.scrollTo(900)

	fmt.Println("-- final element classes --")
	for _, el := range elements {
		class, _ := el.Attr("class")
		fmt.Printf("   %-6s %s\n", elementID(el), class)
	}
}

func elementID(el dom.Element) string {
	id, _ := el.Attr("id")
	return id
}

func elementByID(els []dom.Element, id string) dom.Element {
	for _, el := range els {
		if got, _ := el.Attr("id"); got == id {
			return el
		}
	}
	return nil
}
