// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package primes finds primes for sizing hash tables.
package primes

// small primes, also used as trial divisors
var pt = []int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
}

// IsPrime reports whether n is prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for _, p := range pt {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	// every prime above 3 is 6k±1
	for k := 114; k-1 <= n/(k-1); k += 6 {
		if n%(k-1) == 0 || n%(k+1) == 0 {
			return false
		}
	}
	return true
}

// NextPrime returns the smallest prime >= n.
func NextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}
	return n
}
