// Package catalog owns the sky resources: constellations, galaxies, posts,
// comments and their image attachments. Writes pass the ownership gate;
// reads flow through the shared response shaper and pager.
package catalog
