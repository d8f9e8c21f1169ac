package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/golang/glog"

	"github.com/jyane/nesrom/ines"
)

var path = flag.String("path", "", "path to NES ROM file")

// readFile reads file as bytes
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func mirroring(c *ines.Cartridge) string {
	switch {
	case c.FourScreenVRAM:
		return "four-screen"
	case c.VerticalMirroring:
		return "vertical"
	default:
		return "horizontal"
	}
}

func main() {
	flag.Parse()
	if *path == "" {
		glog.Fatalln("-path is required")
	}
	buf, err := readFile(*path)
	if err != nil {
		glog.Fatalln("Failed to read: " + *path)
	}
	cartridge, err := ines.Load(buf)
	if err != nil {
		glog.Fatalln("Failed to decode: ", err)
	}
	glog.Infof("decoded %s: %d bytes", *path, len(buf))
	fmt.Printf("format:    %v\n", cartridge.Format)
	fmt.Printf("mapper:    %d\n", cartridge.Mapper)
	fmt.Printf("prg rom:   %d x 16KiB (%d bytes)\n", cartridge.PRGROMSize, cartridge.PRGROMBytes())
	fmt.Printf("chr rom:   %d x 8KiB (%d bytes)\n", cartridge.CHRROMSize, cartridge.CHRROMBytes())
	fmt.Printf("mirroring: %s\n", mirroring(cartridge))
	fmt.Printf("battery:   %t\n", cartridge.HasBattery)
	fmt.Printf("trainer:   %t\n", cartridge.Trainer != nil)
}
