package shared

// VerticalEpsilon is the |dx| threshold below which two configuring
// points are treated as lying on a vertical line. Changing this value
// changes which point pairs fall into the vertical branch, so it must
// stay fixed for compatibility with existing callers.
const VerticalEpsilon = 1e-6
