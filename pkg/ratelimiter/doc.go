// Package ratelimiter implements a token bucket limiter with an in-memory
// store and HTTP middleware.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity: 30, RefillRate: 30, RefillInterval: time.Minute,
//	})
//	r.With(ratelimiter.Middleware(bucket, ratelimiter.ByRemoteIP, nil, nil)).Post("/upload", h)
//
// Tokens are refilled in whole intervals. A denied request leaves the bucket
// unchanged and reports a negative Remaining.
package ratelimiter
