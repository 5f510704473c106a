package ignite_test

import (
	"context"
	"fmt"
	"os"

	"github.com/ignitedb/ignite/pkg/ignite"
	"github.com/ignitedb/ignite/pkg/options"
)

// Example mirrors the Bitcask reference implementation's basic_operations
// walkthrough: open a store, put a key, overwrite it, read it back, delete
// it, and confirm the delete took effect.
func Example() {
	ctx := context.Background()
	dir, err := os.MkdirTemp("", "ignite-example-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	inst, err := ignite.NewInstance(ctx, "example", options.WithDirPath(dir))
	if err != nil {
		panic(err)
	}
	defer inst.Close(ctx)

	if err := inst.Set(ctx, "key1", []byte("value1")); err != nil {
		panic(err)
	}

	if err := inst.Set(ctx, "key1", []byte("new value")); err != nil {
		panic(err)
	}

	value, err := inst.Get(ctx, "key1")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(value))

	if err := inst.Delete(ctx, "key1"); err != nil {
		panic(err)
	}

	if _, err := inst.Get(ctx, "key1"); err != nil {
		fmt.Println("key1 not found after delete")
	}

	// Output:
	// new value
	// key1 not found after delete
}
