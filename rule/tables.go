package rule

// Node and weight tables for the embedded Gauss–Kronrod pairs.
//
// The half tables list the non-negative abscissae in decreasing order
// together with their Kronrod weights, the standard compact form for
// symmetric rules. expand mirrors them into full ascending node slices at
// package init. Gauss nodes sit at the odd half-table positions; their
// weights are interleaved with zeros so the Kronrod and Gauss sums share
// one pass over the node results.

// G7/K15: 15 nodes, Gauss component exact to degree 13, Kronrod to 22.
var (
	xgk15 = []float64{
		0.991455371120812639206854697526329,
		0.949107912342758524526189684047851,
		0.864864423359769072789712788640926,
		0.741531185599394439863864773280788,
		0.586087235467691130294144838258730,
		0.405845151377397166906606412076961,
		0.207784955007898467600689403773245,
		0.000000000000000000000000000000000,
	}
	wgk15 = []float64{
		0.022935322010529224963732008058970,
		0.063092092629978553290700663189204,
		0.104790010322250183839876322541518,
		0.140653259715525918745189590510238,
		0.169004726639267902826583426598550,
		0.190350578064785409913256402421014,
		0.204432940075298892414161999234649,
		0.209482141084727828012999174891714,
	}
	wg7 = []float64{
		0.129484966168869693270611432679082,
		0.279705391489276667901467771423780,
		0.381830050505118944950369775488975,
		0.417959183673469387755102040816327,
	}
)

// G10/K21: 21 nodes, Gauss component exact to degree 19, Kronrod to 31.
var (
	xgk21 = []float64{
		0.995657163025808080735527280689003,
		0.973906528517171720077964012084452,
		0.930157491355708226001207180059508,
		0.865063366688984510732096688423493,
		0.780817726586416897063717578345042,
		0.679409568299024406234327365114874,
		0.562757134668604683339000099272694,
		0.433395394129247190799265943165784,
		0.294392862701460198131126603103866,
		0.148874338981631210884826001129720,
		0.000000000000000000000000000000000,
	}
	wgk21 = []float64{
		0.011694638867371874278064396062192,
		0.032558162307964727478818972459390,
		0.054755896574351996031381300244580,
		0.075039674810919952767043140916190,
		0.093125454583697605535065465083366,
		0.109387158802297641899210590325805,
		0.123491976262065851077958109831074,
		0.134709217311473325928054001771707,
		0.142775938577060080797094273138717,
		0.147739104901338491374841515972068,
		0.149445554002916905664936468389821,
	}
	wg10 = []float64{
		0.066671344308688137593568809893332,
		0.149451349150580593145776339657697,
		0.219086362515982043995534934228163,
		0.269266719309996355091226921569469,
		0.295524224714752870173892994651338,
	}
)

// Prebuilt pairs returned by ForKind.
var (
	gk15 = expand(GaussKronrod15, xgk15, wgk15, wg7, 13, 22)
	gk21 = expand(GaussKronrod21, xgk21, wgk21, wg10, 19, 31)
)

// expand mirrors a half table into a full symmetric Pair with ascending
// nodes. The half table holds h = (n+1)/2 non-negative abscissae in
// decreasing order, the last being the center node 0. Gauss nodes occupy the
// odd half-table positions: position i carries Gauss weight wg[i/2] when i
// is odd, zero otherwise (so a pair with even Gauss count, like G10/K21, has
// a Kronrod-only center node).
func expand(kind Kind, xh, wkh, wgh []float64, gaussDeg, kronrodDeg int) Pair {
	h := len(xh)
	n := 2*h - 1
	nodes := make([]float64, n)
	wk := make([]float64, n)
	wg := make([]float64, n)
	for i := 0; i < h; i++ {
		g := 0.0
		if i%2 == 1 {
			g = wgh[i/2]
		}
		// Left mirror: most negative node first.
		nodes[i] = -xh[i]
		wk[i] = wkh[i]
		wg[i] = g
		// Right mirror; i == h-1 is the center node, written once.
		nodes[n-1-i] = xh[i]
		wk[n-1-i] = wkh[i]
		wg[n-1-i] = g
	}

	return Pair{
		Kind:          kind,
		Nodes:         nodes,
		Kronrod:       wk,
		Gauss:         wg,
		GaussDegree:   gaussDeg,
		KronrodDegree: kronrodDeg,
	}
}
