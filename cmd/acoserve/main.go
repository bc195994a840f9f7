// Command acoserve exposes the ACO solver over HTTP:
//
//	POST /solve   — JSON distance matrix + parameters, returns the best tour
//	GET  /healthz — liveness probe
//
// The service is stateless: every request runs its own colony.
package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	r := mux.NewRouter()
	r.HandleFunc("/solve", solveHandler).Methods("POST")
	r.HandleFunc("/healthz", healthHandler).Methods("GET")

	log.Infof("acoserve listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, r))
}
