package bucketset_test

import (
	"fmt"

	"github.com/shivanshs9/wordbench/internal/bucketset"
)

func ExampleSet() {
	set := bucketset.New(bucketset.DefaultBucketCount)
	for _, w := range []string{"apple", "banana", "cherry", "date", "elderberry"} {
		set.Insert(w)
	}

	fmt.Println(set.Insert("apple"), set.Len())
	fmt.Println(set.Remove("banana"), set.Remove("banana"))
	set.Remove("date")
	fmt.Println(set.Len(), set.Contains("cherry"), set.BucketCount())

	// Output:
	// false 5
	// true false
	// 3 true 32768
}
