package main

import (
	"github.com/unihd-cag/simple-geometry/geomcli"
	"github.com/unihd-cag/simple-geometry/lib/xmain"
)

func main() {
	xmain.Main(geomcli.Run)
}
