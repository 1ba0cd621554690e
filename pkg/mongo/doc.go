// Package mongo provides MongoDB connection management with environment-based
// configuration, connection retry, and a health check suitable for readiness
// probes.
//
// # Usage
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer db.Client().Disconnect(ctx)
//
// Connection failures are wrapped in package errors compatible with
// errors.Is, so callers can distinguish connectivity problems from other
// startup failures.
package mongo
