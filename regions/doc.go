// Package regions treats a marker as a small grid graph and finds its
// connected regions of one colour.
//
// What:
//
//   - Components returns each contiguous region ("island") of Black or White
//     cells under 4- or 8-connectivity, as row-major cell indices.
//   - Count returns only the number of regions.
//   - MinRegions adapts Count into a dictionary.Filter.
//
// Why:
//
//   - Markers whose ink forms one blob are easily confused with a smudge or a
//     corner of the quiet zone. Requiring several black regions, or a bounded
//     number of white holes, keeps printed tags well textured.
//
// Complexity:
//
//   - Components, Count: O(n²·d) time, O(n²) memory (d = 4 or 8 neighbours).
package regions
