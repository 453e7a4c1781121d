// Command watershed loads a workbook of elevation scenarios, picks one and
// prints the cells whose water reaches both the northwest and southeast drains.
//
// Usage:
//
//	watershed -workbook islands.yaml -list
//	watershed -workbook islands.yaml -scenario classic
//	watershed -workbook basin.csv -explain 2,2
//
// The workbook path falls back to $WATERSHED_WORKBOOK.
package main

import (
	"context"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if err := run(ctx, os.Args[1:], os.Stdout, os.Getenv); err != nil {
		log.WithError(err).Error("watershed failed")
		stop()
		os.Exit(1)
	}
}
