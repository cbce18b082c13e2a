// Command kenat converts dates and lists holidays on the Ethiopian calendar.
//
//	kenat to-gregorian 2016 8 27
//	kenat to-ethiopian 2024 5 5
//	kenat hijri 2024-04-10
//	kenat bahire-hasab 2016
//	kenat holidays 2016 --month 8 --lang en --tags public --format csv
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
