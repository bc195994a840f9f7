// Package aco is a MIN-MAX Ant Colony Optimization toolkit for the metric
// Traveling Salesman Problem.
//
// 🐜 What does it do?
//
//	Given an N×N distance matrix it searches for a short Hamiltonian cycle:
//		• colony/  — the ACO engine: stochastic tour construction, MIN-MAX
//		  bounded pheromone field, elitist update, parallel ant dispatch
//		• distmat/ — immutable dense distance matrices with strict validation
//		• csvdist/ — CSV distance tables → matrices (missing edges ⇒ +Inf)
//
// Two runnable entry points live under cmd/:
//
//	cmd/acotsp   — batch solver driven by a TOML config file
//	cmd/acoserve — a small HTTP service exposing POST /solve
//
// Start with colony.New and colony.Options; see colony's package docs and
// examples for the full contract.
package aco
