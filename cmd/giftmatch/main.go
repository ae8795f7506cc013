package main

import "github.com/cleitonmarx/giftmatch/internal/app"

func main() {
	err := app.NewGiftMatchApp().Run()
	if err != nil {
		panic(err)
	}
}
