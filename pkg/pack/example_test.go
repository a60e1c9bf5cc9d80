package pack_test

import (
	"fmt"

	"github.com/joshuapare/bmpkit/pkg/pack"
)

func ExamplePack() {
	b, _ := pack.Pack(">I", 10240099)
	fmt.Printf("% x\n", b)
	// Output:
	// 00 9c 40 63
}

func ExampleUnpack() {
	vals, _ := pack.Unpack(">IH", []byte{0xf0, 0xf0, 0xf0, 0xf0, 0x80, 0x80})
	fmt.Println(vals...)
	// Output:
	// 4042322160 32896
}
