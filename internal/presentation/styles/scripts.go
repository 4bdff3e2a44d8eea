package styles

// MenuScript toggles the collapsed navigation below the mobile breakpoint.
const MenuScript = `(function(){var t=document.querySelector('.tp-nav-toggle'),n=document.querySelector('.tp-nav');if(!t||!n)return;t.addEventListener('click',function(){var o=n.classList.toggle('tp-open');t.setAttribute('aria-expanded',o?'true':'false')});n.addEventListener('click',function(e){if(e.target.tagName==='A'){n.classList.remove('tp-open');t.setAttribute('aria-expanded','false')}})})();`

// FloatingCTAScript reveals the docked call-to-action once the hero has
// scrolled out of view.
const FloatingCTAScript = `(function(){var c=document.getElementById('tp-floating-cta');if(!c)return;var h=document.querySelector('.tp-hero'),lim=h?h.offsetHeight*0.6:200;function f(){if(window.scrollY>lim){c.classList.remove('tp-hidden')}else{c.classList.add('tp-hidden')}}window.addEventListener('scroll',f,{passive:true});f()})();`

// MenuToggleText is the glyph on the collapsed-menu button.
const MenuToggleText = "☰"
