package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/bytewire"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	keys := []string{"azerty", "hello", "world", "random"}
	payload := make([]byte, 256)
	size := bytewire.Int64Size +
		bytewire.SizeOfArray(keys, bytewire.SizeOfString) +
		bytewire.SizeOfBytes(payload)
	buf := make([]byte, size)

	for i := 0; i < 10000; i++ {
		w := bytewire.NewCursor(bytewire.NewSegment(buf))
		w.WriteInt64(int64(i))
		w.WriteInt32(int32(len(keys)))
		for _, k := range keys {
			w.WriteString(k)
		}
		w.WriteBytes(payload)

		r := bytewire.NewCursor(bytewire.NewSegment(buf))
		r.ReadInt64()
		n := int(r.ReadInt32())
		for j := 0; j < n; j++ {
			r.ReadString()
		}
		r.ReadBytes()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
