// Package timeline projects an itinerary day into display cards.
//
// A projection is a single ordered pass over the events. Each card carries the
// map link (directions from the previous known place, or a plain search), an
// optional train booking link and an optional guide link. Nothing here does
// I/O; the same input always yields the same cards.
package timeline
