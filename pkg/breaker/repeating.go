package breaker

import (
	"fmt"
	"sync"
)

// Transpose splits ciphertext into k columns where column i holds byte i of
// every k-byte chunk. A short final chunk only feeds the leading columns.
func Transpose(ciphertext []byte, k int) [][]byte {
	if k <= 0 {
		return nil
	}
	columns := make([][]byte, k)
	for i := range columns {
		columns[i] = make([]byte, 0, (len(ciphertext)+k-1)/k)
	}
	for i, c := range ciphertext {
		columns[i%k] = append(columns[i%k], c)
	}
	return columns
}

// RepeatingKey estimates the key length, breaks each column as single-byte
// XOR and returns the assembled key. Any column that fails aborts the break.
func (b *Breaker) RepeatingKey(ciphertext []byte) ([]byte, error) {
	k, err := b.EstimateKeySize(ciphertext)
	if err != nil {
		return nil, err
	}

	columns := Transpose(ciphertext, k)
	key, err := b.breakColumns(columns)
	if err != nil {
		return nil, err
	}

	b.logger.Debug("recovered repeating key", "size", len(key), "key", fmt.Sprintf("%q", key))
	return key, nil
}

func (b *Breaker) breakColumns(columns [][]byte) ([]byte, error) {
	key := make([]byte, len(columns))
	errs := make([]error, len(columns))

	if b.opts.Workers <= 1 {
		for i, col := range columns {
			c, err := b.SingleByte(col)
			if err != nil {
				return nil, fmt.Errorf("column %d of %d: %w", i, len(columns), err)
			}
			key[i] = c.Key
		}
		return key, nil
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, b.opts.Workers)
	for i, col := range columns {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, col []byte) {
			defer wg.Done()
			defer func() { <-sem }()

			c, err := b.SingleByte(col)
			if err != nil {
				errs[i] = err
				return
			}
			key[i] = c.Key
		}(i, col)
	}
	wg.Wait()

	// Report the lowest failing column so the result matches the serial path.
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("column %d of %d: %w", i, len(columns), err)
		}
	}
	return key, nil
}
