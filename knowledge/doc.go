// Package knowledge contains the static keyword index backing the
// core.KnowledgeIndex contract. The index simulates retrieval augmented
// context with a fixed keyword to fact table loaded once at construction;
// lookups are plain substring matches against the lowercased query, iterated
// in table insertion order so results are deterministic.
//
// Swap in a vector database or semantic index behind the same contract for
// real retrieval - only the wiring layer needs to change.
package knowledge
