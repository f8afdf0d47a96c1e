// Package trackprofile implements the Track-Profile family (spec §4.10):
// trackside profile reporting keyed by ref_profile_id, against a master
// table whose rows name a (line, chainage) point rather than a station id,
// reusing the stationary-regular decoder's Static-Speed-Profile
// and Gradient sub-packets (§4.4 sub-types 0b0001/0b0010) rather than a new
// wire format.
package trackprofile
